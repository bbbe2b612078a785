package optional

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValue(t *testing.T) {
	t.Run("None works as intended", func(t *testing.T) {
		v := None[int]()
		if v.indirect != nil {
			t.Fatal("should be nil")
		}
	})

	t.Run("Some works as intended", func(t *testing.T) {
		t.Run("for a zero nonpointer value", func(t *testing.T) {
			v := Some(0)
			if v.indirect == nil || *v.indirect != 0 {
				t.Fatal("unexpected indirect")
			}
		})

		t.Run("for a nonnil pointer", func(t *testing.T) {
			underlying := 12345
			v := Some(&underlying)
			if v.indirect == nil || **v.indirect != underlying {
				t.Fatal("unexpected indirect")
			}
		})

		t.Run("for a nil pointer", func(t *testing.T) {
			var underlying *int
			if v := Some(underlying); !v.IsNone() {
				t.Fatal("expected none")
			}
		})

		t.Run("for a nil error", func(t *testing.T) {
			var err error
			if v := Some(err); !v.IsNone() {
				t.Fatal("expected none")
			}
		})

		t.Run("for a nil map", func(t *testing.T) {
			var m map[string]any
			if v := Some(m); !v.IsNone() {
				t.Fatal("expected none")
			}
		})
	})

	t.Run("Unwrap works as intended", func(t *testing.T) {
		t.Run("for an empty Value", func(t *testing.T) {
			var err error
			func() {
				defer func() {
					err = recover().(error)
				}()
				None[int]().Unwrap()
			}()
			if !errors.Is(err, ErrIsNone) {
				t.Fatal("unexpected err", err)
			}
		})

		t.Run("for a nonempty Value", func(t *testing.T) {
			if v := Some(12345).Unwrap(); v != 12345 {
				t.Fatal("unexpected value", v)
			}
		})
	})

	t.Run("UnwrapOr works as intended", func(t *testing.T) {
		if v := None[int]().UnwrapOr(555); v != 555 {
			t.Fatal("unexpected value", v)
		}
		if v := Some(12345).UnwrapOr(555); v != 12345 {
			t.Fatal("unexpected value", v)
		}
	})

	t.Run("JSON serialization", func(t *testing.T) {
		type config struct {
			UID Value[int64]
		}

		t.Run("marshal an empty value", func(t *testing.T) {
			got, err := json.Marshal(config{})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(`{"UID":null}`, string(got)); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("marshal a nonempty value", func(t *testing.T) {
			got, err := json.Marshal(config{UID: Some[int64](12345)})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(`{"UID":12345}`, string(got)); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("unmarshal a valid value", func(t *testing.T) {
			var state config
			if err := json.Unmarshal([]byte(`{"UID":12345}`), &state); err != nil {
				t.Fatal(err)
			}
			if state.UID.UnwrapOr(0) != 12345 {
				t.Fatal("did not set the value")
			}
		})

		t.Run("unmarshal null", func(t *testing.T) {
			state := config{UID: Some[int64](1)}
			if err := json.Unmarshal([]byte(`{"UID":null}`), &state); err != nil {
				t.Fatal(err)
			}
			if !state.UID.IsNone() {
				t.Fatal("expected none")
			}
		})

		t.Run("unmarshal an incompatible value", func(t *testing.T) {
			var state config
			if err := json.Unmarshal([]byte(`{"UID":[]}`), &state); err == nil {
				t.Fatal("expected an error")
			}
			if !state.UID.IsNone() {
				t.Fatal("should not have set the value")
			}
		})
	})
}
