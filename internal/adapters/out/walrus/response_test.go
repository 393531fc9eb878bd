package walrus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStoreResponse(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{
			name:   "newly created object",
			output: `{"newlyCreated":{"blobObject":{"id":"0xabc","blobId":"M4hsZGQ1oCktdzegB6HnI6Mi28S2nqOPHxK-W7_4BUk","size":5}}}`,
			want:   "M4hsZGQ1oCktdzegB6HnI6Mi28S2nqOPHxK-W7_4BUk",
		},
		{
			name:   "already certified object",
			output: `{"alreadyCertified":{"blobId":"existing","endEpoch":10}}`,
			want:   "existing",
		},
		{
			name:   "array form",
			output: "  [{\"blobStoreResult\":{\"alreadyCertified\":{\"blobId\":\"arr\"}},\"path\":\"/tmp/f\"}]\n",
			want:   "arr",
		},
		{name: "array without result", output: `[{"path":"/tmp/f"}]`, wantErr: true},
		{name: "empty object", output: `{}`, wantErr: true},
		{name: "truncated", output: `{"alreadyCertified":`, wantErr: true},
		{name: "blank", output: "  \n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStoreResponse([]byte(tt.output))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReadResponse(t *testing.T) {
	data, err := parseReadResponse([]byte(`{"blobId":"x","blob":"aGVsbG8="}`))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	empty, err := parseReadResponse([]byte(`{"blob":""}`))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = parseReadResponse([]byte(`{"blobId":"x"}`))
	assert.Error(t, err)

	_, err = parseReadResponse([]byte(`{"blob":"!!"}`))
	assert.Error(t, err)
}
