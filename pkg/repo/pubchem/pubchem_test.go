package pubchem

import (
	// 外部依赖
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// 内部引用
	config "github.com/openbench/labbook/internal/config"
	code "github.com/openbench/labbook/pkg/common/code"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) *pubchemImpl {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	old := config.Global().RPC.PubChem.Addr
	config.Global().RPC.PubChem.Addr = server.URL
	t.Cleanup(func() { config.Global().RPC.PubChem.Addr = old })

	return NewPubChemRepo().(*pubchemImpl)
}

func TestGetCompoundByName(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/rest/pug/compound/name/aspirin/"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"PropertyTable": {
				"Properties": [{
					"CID": 2244,
					"Title": "Aspirin",
					"MolecularFormula": "C9H8O4",
					"MolecularWeight": "180.16",
					"IUPACName": "2-acetyloxybenzoic acid",
					"SMILES": "CC(=O)OC1=CC=CC=C1C(=O)O"
				}]
			}
		}`))
	})

	info, err := repo.GetCompoundByName(context.Background(), "aspirin")
	require.NoError(t, err)
	assert.Equal(t, "Aspirin", info.Name)
	assert.Equal(t, "C9H8O4", info.MolecularFormula)
	assert.InDelta(t, 180.16, info.MolecularWeight, 1e-9)
	assert.Equal(t, "CC(=O)OC1=CC=CC=C1C(=O)O", info.SMILES)
}

func TestGetCompoundByNameNotFound(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := repo.GetCompoundByName(context.Background(), "unobtainium")
	assert.ErrorIs(t, err, code.CompoundNotFoundErr)
}

func TestGetCompoundByNameUpstreamError(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := repo.GetCompoundByName(context.Background(), "aspirin")
	assert.ErrorIs(t, err, code.RPCHttpCodeErr)
}

func TestGetCompoundByNameEmptyTable(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"PropertyTable": {"Properties": []}}`))
	})

	_, err := repo.GetCompoundByName(context.Background(), "aspirin")
	assert.ErrorIs(t, err, code.RPCHttpRespErr)
}
