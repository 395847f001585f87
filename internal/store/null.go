package store

// NullStore is the no-op adapter selected when STORE_DATABASE_ID=debug.
// Every method is a no-op; Load always reports "not found" so callers
// default-initialize the session, matching original_source's
// backend/firestore.rs debug special-case.
type NullStore struct{}

func (NullStore) Load(sessionID string) ([]byte, bool, error) { return nil, false, nil }
func (NullStore) Save(sessionID string, raw []byte) error     { return nil }
func (NullStore) Exists(sessionID string) (bool, error)       { return false, nil }
func (NullStore) Delete(sessionID string) error                { return nil }
func (NullStore) Close() error                                 { return nil }

var _ StateStore = NullStore{}
