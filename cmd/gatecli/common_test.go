package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/ioutil"
	"testing"

	"github.com/iov-one/gate/cmd/gated/app"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest"
	"github.com/iov-one/gate/gatetest/assert"
	"github.com/iov-one/gate/x/threshold"
)

func TestReadWriteTx(t *testing.T) {
	tx, err := app.NewTx(&threshold.UpdateThresholdMsg{
		Config:    gatetest.NewCondition().Address(),
		Threshold: 1234,
	})
	assert.Nil(t, err)

	var buf bytes.Buffer
	n, err := writeTx(&buf, tx)
	assert.Nil(t, err)
	assert.Equal(t, buf.Len(), n)

	// two transactions can be streamed one after another
	_, err = writeTx(&buf, tx)
	assert.Nil(t, err)

	for i := 0; i < 2; i++ {
		got, _, err := readTx(&buf)
		assert.Nil(t, err)
		assert.Equal(t, tx, got)
	}

	_, _, err = readTx(&buf)
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestReadTxTooBig(t *testing.T) {
	var header [txHeaderSize]byte
	binary.BigEndian.PutUint32(header[:], maxTxSize+1)
	_, _, err := readTx(bytes.NewReader(header[:]))
	assert.IsErr(t, errors.ErrInput, err)
}

func TestReadTxTruncated(t *testing.T) {
	var header [txHeaderSize]byte
	binary.BigEndian.PutUint32(header[:], 10)
	_, _, err := readTx(bytes.NewReader(append(header[:], 1, 2, 3)))
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("unexpected error: %v", err)
	}
}

func mustCreateFile(t testing.TB, r io.Reader) string {
	t.Helper()

	fd, err := ioutil.TempFile("", "gatecli")
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	if _, err := io.Copy(fd, r); err != nil {
		t.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		t.Fatal(err)
	}
	return fd.Name()
}
