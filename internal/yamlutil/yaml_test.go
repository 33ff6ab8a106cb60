package yamlutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnah/go-maintpage/internal/yamlutil"
)

type testSettings struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML into Go structs
// ---------------------------------------------------------------------------

func TestUnmarshalStrict_Input(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{name: "valid", data: []byte("name: test\nlevel: 2"), dest: &testSettings{}},
		{name: "nil data", data: nil, dest: &testSettings{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &testSettings{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("name: x"), dest: nil, wantErr: yamlutil.ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			got := tt.dest.(*testSettings)
			assert.Equal(t, "test", got.Name)
			assert.Equal(t, 2, got.Level)
		})
	}
}

func TestUnmarshalStrict_SyntaxErrorIsPrefixed(t *testing.T) {
	t.Parallel()

	err := yamlutil.UnmarshalStrict([]byte("name: [unclosed"), &testSettings{})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "yamlutil:"), "got %q", err.Error())
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict_UnknownFields - Rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict_UnknownFields(t *testing.T) {
	t.Parallel()

	var s testSettings
	require.NoError(t, yamlutil.UnmarshalStrict([]byte("name: ok"), &s))
	assert.Equal(t, "ok", s.Name)

	err := yamlutil.UnmarshalStrict([]byte("name: ok\nextra: 1"), &testSettings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yamlutil:")
}

// ---------------------------------------------------------------------------
// TestMarshal - Serializes values back to YAML
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(testSettings{Name: "maint", Level: 1})
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: maint")
	assert.Contains(t, string(out), "level: 1")
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Rejects oversized input (not parallel: mutates global)
// ---------------------------------------------------------------------------

func TestInputSizeLimit(t *testing.T) {
	original := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = original })

	yamlutil.MaxInputSize = 16
	var v testSettings
	err := yamlutil.UnmarshalStrict([]byte("name: longer than sixteen bytes\n"), &v)
	require.ErrorIs(t, err, yamlutil.ErrInputTooLarge)
}
