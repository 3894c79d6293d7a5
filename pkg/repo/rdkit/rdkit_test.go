package rdkit

import (
	// 外部依赖
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// 内部引用
	config "github.com/openbench/labbook/internal/config"
	code "github.com/openbench/labbook/pkg/common/code"
)

func newTestCanonicalizer(t *testing.T, handler http.HandlerFunc) *rdkitImpl {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	old := config.Global().RPC.RDKit.Addr
	config.Global().RPC.RDKit.Addr = server.URL
	t.Cleanup(func() { config.Global().RPC.RDKit.Addr = old })

	return NewCanonicalizer().(*rdkitImpl)
}

func TestCanonicalize(t *testing.T) {
	c := newTestCanonicalizer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/canonicalize", r.URL.Path)
		in := &canonicalizeReq{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(in))
		assert.Equal(t, "OCC", in.SMILES)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"canonical_smiles": "CCO", "molecular_weight": 46.07}`))
	})

	result, err := c.Canonicalize(context.Background(), "OCC")
	require.NoError(t, err)
	assert.Equal(t, "CCO", result.CanonicalSMILES)
	assert.InDelta(t, 46.07, result.MolecularWeight, 1e-9)
}

func TestCanonicalizeInvalidSMILES(t *testing.T) {
	c := newTestCanonicalizer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.Canonicalize(context.Background(), "not-a-smiles")
	assert.ErrorIs(t, err, code.InvalidSMILESErr)
	assert.Contains(t, err.Error(), "invalid SMILES")
}

func TestCanonicalizeUpstreamError(t *testing.T) {
	c := newTestCanonicalizer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Canonicalize(context.Background(), "CCO")
	assert.ErrorIs(t, err, code.RPCHttpCodeErr)
}

func TestCanonicalizeEmptyResponse(t *testing.T) {
	c := newTestCanonicalizer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.Canonicalize(context.Background(), "CCO")
	assert.ErrorIs(t, err, code.RPCHttpRespErr)
}
