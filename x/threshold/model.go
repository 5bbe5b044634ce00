package threshold

import (
	"math"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/orm"
)

const (
	// BucketName is where the configuration record is stored.
	BucketName = "threshold"

	// conditionExt and conditionType name the derivation namespace.
	conditionExt  = "thresh"
	conditionType = "config"

	// reservedPrefix is the first address byte that a configuration
	// address must not start with.
	reservedPrefix byte = 0x00
)

var configSeed = []byte("config")

// Condition returns the condition the configuration address is derived
// from for given tag.
func Condition(tag uint8) gate.Condition {
	data := make([]byte, 0, len(configSeed)+1)
	data = append(data, configSeed...)
	data = append(data, tag)
	return gate.NewCondition(conditionExt, conditionType, data)
}

// CanonicalTag searches the tags from 255 down and returns the first one
// whose address does not start with the reserved prefix.
func CanonicalTag() (uint8, error) {
	for tag := 255; tag >= 0; tag-- {
		if Condition(uint8(tag)).Address()[0] != reservedPrefix {
			return uint8(tag), nil
		}
	}
	return 0, errors.Wrap(errors.ErrState, "no canonical derivation tag")
}

// ConfigAddress returns the canonical address of the configuration record
// together with the tag it was derived from.
func ConfigAddress() (gate.Address, uint8, error) {
	tag, err := CanonicalTag()
	if err != nil {
		return nil, 0, err
	}
	return Condition(tag).Address(), tag, nil
}

var _ orm.Model = (*Config)(nil)

// Address returns the address this record is stored under.
func (c *Config) Address() gate.Address {
	return Condition(uint8(c.DerivationTag)).Address()
}

// Validate ensures none of the identities is missing and that the tag
// fits in a byte.
func (c *Config) Validate() error {
	if c.DerivationTag > math.MaxUint8 {
		return errors.Wrapf(errors.ErrInput, "derivation tag %d", c.DerivationTag)
	}
	if err := c.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	if err := c.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := c.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}

// ConfigStore is the durable home of the configuration record. It does not
// enforce authorization, that is done by the handlers.
type ConfigStore interface {
	// Create stores a new record under its canonical address. It fails
	// with ErrDuplicate if a record exists already.
	Create(db gate.KVStore, cfg *Config) error
	// Load returns the record derived from given tag. It fails with
	// ErrNotFound if there is none and with ErrAddressMismatch if the tag
	// is not canonical or does not match the stored one.
	Load(db gate.ReadOnlyKVStore, tag uint8) (*Config, error)
	// Save overwrites an existing record.
	Save(db gate.KVStore, cfg *Config) error
}

// Bucket is a ConfigStore backed by an orm bucket.
type Bucket struct {
	orm.ModelBucket
}

var _ ConfigStore = Bucket{}

// NewBucket returns a bucket for the configuration record.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Config{}),
	}
}

// canonicalKey returns the store key for given tag, if the tag is the
// canonical one.
func canonicalKey(tag uint32) (gate.Address, error) {
	addr, canonical, err := ConfigAddress()
	if err != nil {
		return nil, err
	}
	if tag != uint32(canonical) {
		return nil, errors.Wrapf(ErrAddressMismatch, "tag %d is not canonical", tag)
	}
	return addr, nil
}

func (b Bucket) Create(db gate.KVStore, cfg *Config) error {
	key, err := canonicalKey(cfg.DerivationTag)
	if err != nil {
		return err
	}
	switch ok, err := b.Has(db, key); {
	case err != nil:
		return err
	case ok:
		return errors.Wrap(errors.ErrDuplicate, "config already initialized")
	}
	return b.Put(db, key, cfg)
}

func (b Bucket) Load(db gate.ReadOnlyKVStore, tag uint8) (*Config, error) {
	key, err := canonicalKey(uint32(tag))
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := b.One(db, key, &cfg); err != nil {
		return nil, err
	}
	if cfg.DerivationTag != uint32(tag) || !cfg.Address().Equals(key) {
		return nil, errors.Wrapf(ErrAddressMismatch, "stored tag %d", cfg.DerivationTag)
	}
	return &cfg, nil
}

func (b Bucket) Save(db gate.KVStore, cfg *Config) error {
	key, err := canonicalKey(cfg.DerivationTag)
	if err != nil {
		return err
	}
	switch ok, err := b.Has(db, key); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrap(errors.ErrNotFound, "config not initialized")
	}
	return b.Put(db, key, cfg)
}
