package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/s-steel/steelsitebackend/repository"
)

// ErrEmptyPayload is returned by SetMany when there is nothing to write.
var ErrEmptyPayload = errors.New("settings: no values provided")

// Store exposes the namespaced, typed view over the flat settings table.
type Store struct {
	Repo repository.SettingRepositoryInterface
}

// NewStore creates a new settings store backed by the given repository.
func NewStore(repo repository.SettingRepositoryInterface) *Store {
	return &Store{Repo: repo}
}

// GetNamespace returns every setting in the namespace, keyed without the
// prefix, with values decoded by the namespace's decode rule.
func (s *Store) GetNamespace(ns Namespace) (map[string]interface{}, error) {
	rows, err := s.Repo.ListByPrefix(ns.Prefix)
	if err != nil {
		return nil, err
	}

	values := make(map[string]interface{}, len(rows))
	for _, row := range rows {
		key := strings.TrimPrefix(row.Key, ns.Prefix)
		values[key] = ns.decodeValue(key, row.Value)
	}
	return values, nil
}

// GetWithDefaults overlays defaults onto GetNamespace: a default is used only
// for keys absent from storage, stored values always win.
func (s *Store) GetWithDefaults(ns Namespace, defaults map[string]interface{}) (map[string]interface{}, error) {
	values, err := s.GetNamespace(ns)
	if err != nil {
		return nil, err
	}
	ApplyDefaults(values, defaults)
	return values, nil
}

// SetMany encodes and upserts each key/value pair. Keys that already carry a
// recognized namespace prefix (footer_, dashboard_) are stored unmodified;
// all other keys get the target namespace's prefix prepended.
func (s *Store) SetMany(ns Namespace, values map[string]interface{}) error {
	if len(values) == 0 {
		return ErrEmptyPayload
	}

	for key, value := range values {
		storageKey := key
		if !hasPassthroughPrefix(key) {
			storageKey = ns.Prefix + key
		}

		encoded, err := encodeValue(value)
		if err != nil {
			return fmt.Errorf("failed to encode setting %q: %w", storageKey, err)
		}
		if err := s.Repo.Upsert(storageKey, encoded); err != nil {
			return err
		}
	}
	return nil
}

// ApplyDefaults fills values with defaults for keys not already present.
func ApplyDefaults(values, defaults map[string]interface{}) {
	for key, defaultValue := range defaults {
		if _, ok := values[key]; !ok {
			values[key] = defaultValue
		}
	}
}

// encodeValue turns an arbitrary JSON-compatible value into its stored string
// form: structured values are serialized as JSON, booleans become the literal
// strings "true"/"false", everything else is stringified.
func encodeValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}

	return fmt.Sprintf("%v", value), nil
}
