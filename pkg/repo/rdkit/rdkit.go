package rdkit

import (
	// 外部依赖
	"context"
	"encoding/json"
	"net/http"
	"time"

	resty "github.com/go-resty/resty/v2"
	r "github.com/redis/go-redis/v9"

	// 内部引用
	config "github.com/openbench/labbook/internal/config"
	code "github.com/openbench/labbook/pkg/common/code"
	logger "github.com/openbench/labbook/pkg/middleware/logger"
	redis "github.com/openbench/labbook/pkg/middleware/redis"
	repo "github.com/openbench/labbook/pkg/repo"
)

// cacheTTL 标准化结果可长期缓存，同一 SMILES 的标准形式不变
const cacheTTL = 24 * time.Hour

type canonicalizeReq struct {
	SMILES string `json:"smiles"`
}

type canonicalizeResp struct {
	CanonicalSMILES string  `json:"canonical_smiles"`
	MolecularWeight float64 `json:"molecular_weight"`
}

type rdkitImpl struct {
	client *resty.Client
	cache  *r.Client
}

func NewCanonicalizer() repo.Canonicalizer {
	baseURL := config.Global().RPC.RDKit.Addr

	return &rdkitImpl{
		client: resty.New().
			SetTimeout(30*time.Second).
			EnableTrace().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
		cache: redis.GetClient(),
	}
}

func (c *rdkitImpl) Canonicalize(ctx context.Context, smiles string) (*repo.CanonicalizeResult, error) {
	if cached := c.fromCache(ctx, smiles); cached != nil {
		return cached, nil
	}

	respData := &canonicalizeResp{}
	res, err := c.client.R().
		SetContext(ctx).
		SetBody(&canonicalizeReq{SMILES: smiles}).
		SetResult(respData).
		Post("/canonicalize")
	if err != nil {
		logger.Errorf(ctx, "Canonicalize request err: %v", err)
		return nil, code.RPCHttpErr.WithErr(err)
	}

	switch res.StatusCode() {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, code.InvalidSMILESErr.WithMsgf("%s is an invalid SMILES", smiles)
	default:
		return nil, code.RPCHttpCodeErr.WithMsgf("canonicalize failed: status %d", res.StatusCode())
	}

	if respData.CanonicalSMILES == "" {
		return nil, code.RPCHttpRespErr.WithMsg("empty canonical SMILES in response")
	}

	result := &repo.CanonicalizeResult{
		CanonicalSMILES: respData.CanonicalSMILES,
		MolecularWeight: respData.MolecularWeight,
	}
	c.toCache(ctx, smiles, result)
	return result, nil
}

func (c *rdkitImpl) cacheKey(smiles string) string {
	return "rdkit:canonical:" + smiles
}

func (c *rdkitImpl) fromCache(ctx context.Context, smiles string) *repo.CanonicalizeResult {
	if c.cache == nil {
		return nil
	}
	raw, err := c.cache.Get(ctx, c.cacheKey(smiles)).Bytes()
	if err != nil {
		return nil
	}
	result := &repo.CanonicalizeResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil
	}
	return result
}

func (c *rdkitImpl) toCache(ctx context.Context, smiles string, result *repo.CanonicalizeResult) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, c.cacheKey(smiles), raw, cacheTTL).Err(); err != nil {
		logger.Warnf(ctx, "cache canonicalize result err: %v", err)
	}
}
