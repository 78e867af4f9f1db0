package app

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x/authority"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "genesis")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cases := map[string]struct {
		content string
		wantErr *errors.Error
	}{
		"valid": {
			content: `{"chain_id": "treasury-1", "app_state": {"conf": {"authority": {}}}}`,
		},
		"invalid chain id": {
			content: `{"chain_id": "x", "app_state": {}}`,
			wantErr: errors.ErrInput,
		},
		"not json": {
			content: `chain_id: treasury-1`,
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			path := filepath.Join(dir, "genesis.json")
			require.NoError(t, ioutil.WriteFile(path, []byte(tc.content), 0600))

			gen, err := LoadGenesis(path)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "treasury-1", gen.ChainID)
			assert.Contains(t, string(gen.AppState["conf"]), authority.PkgName)
		})
	}

	_, err = LoadGenesis(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.ErrInput.Is(err))
}
