package repo

import "context"

// CanonicalizeResult 结构标准化结果
type CanonicalizeResult struct {
	CanonicalSMILES string  `json:"canonical_smiles"`
	MolecularWeight float64 `json:"molecular_weight"`
}

// Canonicalizer 结构标准化能力，注册表逻辑只依赖该接口
// 非法 SMILES 返回 code.InvalidSMILESErr
type Canonicalizer interface {
	Canonicalize(ctx context.Context, smiles string) (*CanonicalizeResult, error)
}
