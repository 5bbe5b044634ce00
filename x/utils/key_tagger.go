package utils

import (
	"encoding/hex"
	"strings"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/store"
	"github.com/tendermint/tendermint/libs/common"
)

// Tag values of a written and of a removed key.
var (
	tagSet    = []byte("s")
	tagDelete = []byte("d")
)

// KeyTagger adds one DeliverTx tag for every key that was written or
// removed while delivering the transaction. A tag key is the upper case
// hex of the store key, so that tendermint can index it.
type KeyTagger struct{}

var _ gate.Decorator = KeyTagger{}

// NewKeyTagger returns a KeyTagger decorator.
func NewKeyTagger() KeyTagger {
	return KeyTagger{}
}

// Check is a pass through, CheckTx results carry no tags.
func (KeyTagger) Check(ctx gate.Context, db gate.KVStore, tx gate.Tx, next gate.Checker) (*gate.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (KeyTagger) Deliver(ctx gate.Context, db gate.KVStore, tx gate.Tx, next gate.Deliverer) (*gate.DeliverResult, error) {
	recorder := store.NewRecordingStore(db)
	res, err := next.Deliver(ctx, recorder, tx)
	if err != nil {
		return nil, err
	}
	if r, ok := recorder.(store.Recorder); ok {
		res.Tags = append(res.Tags, changeTags(r.KVPairs())...)
	}
	return res, nil
}

// changeTags returns the sorted tags of the recorded changes. A nil value
// marks a removed key.
func changeTags(changes map[string][]byte) common.KVPairs {
	if len(changes) == 0 {
		return nil
	}
	tags := make(common.KVPairs, 0, len(changes))
	for key, value := range changes {
		tag := common.KVPair{
			Key:   []byte(strings.ToUpper(hex.EncodeToString([]byte(key)))),
			Value: tagSet,
		}
		if value == nil {
			tag.Value = tagDelete
		}
		tags = append(tags, tag)
	}
	tags.Sort()
	return tags
}
