package reagent

import (
	// 外部依赖
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// 内部引用
	code "github.com/openbench/labbook/pkg/common/code"
	core "github.com/openbench/labbook/pkg/core/reagent"
	db "github.com/openbench/labbook/pkg/middleware/db"
	model "github.com/openbench/labbook/pkg/model"
	repo "github.com/openbench/labbook/pkg/repo"
	repoReagent "github.com/openbench/labbook/pkg/repo/reagent"
)

// fakeCanonicalizer 用固定映射表模拟结构标准化，同一物质的不同写法
// 归一到同一条目，表外输入视为非法 SMILES
type fakeCanonicalizer struct {
	known map[string]string
}

func (f *fakeCanonicalizer) Canonicalize(_ context.Context, smiles string) (*repo.CanonicalizeResult, error) {
	if canonical, ok := f.known[smiles]; ok {
		return &repo.CanonicalizeResult{CanonicalSMILES: canonical, MolecularWeight: 46.07}, nil
	}
	return nil, code.InvalidSMILESErr.WithMsgf("%s is an invalid SMILES", smiles)
}

type fakePubChem struct {
	compounds map[string]*repo.CompoundInfo
}

func (f *fakePubChem) GetCompoundByName(_ context.Context, name string) (*repo.CompoundInfo, error) {
	if info, ok := f.compounds[name]; ok {
		return info, nil
	}
	return nil, code.CompoundNotFoundErr.WithMsgf("compound %s not found", name)
}

func setupSvc(t *testing.T) core.Service {
	t.Helper()
	ctx := context.Background()
	db.InitSqlite(ctx, fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name()))
	require.NoError(t, db.DB().DBIns().AutoMigrate(
		&model.Project{},
		&model.Experiment{},
		&model.Reagent{},
		&model.ExperimentReagent{},
	))
	t.Cleanup(func() { db.ClosePostgres(ctx) })

	canonicalizer := &fakeCanonicalizer{known: map[string]string{
		"OCC":      "CCO",
		"C(C)O":    "CCO",
		"CCO":      "CCO",
		"c1ccccc1": "c1ccccc1",
	}}
	pubchem := &fakePubChem{compounds: map[string]*repo.CompoundInfo{
		"ethanol": {Name: "Ethanol", MolecularFormula: "C2H6O", MolecularWeight: 46.07, SMILES: "CCO"},
	}}
	return NewWithDeps(repoReagent.New(), canonicalizer, pubchem)
}

func weight(v float64) *float64 { return &v }

func str(s string) *string { return &s }

func TestAddReagent(t *testing.T) {
	svc := setupSvc(t)
	ctx := context.Background()

	resp, err := svc.Add(ctx, &core.AddReq{
		ReagentName:     str("Ethanol"),
		CanonicalSMILES: str("OCC"),
		MolecularWeight: weight(46.07),
		Density:         weight(0.789),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Reagent)
	// 名称小写入库
	assert.Equal(t, "ethanol", *resp.Reagent.Name)
	// 结构按标准化形式入库
	assert.Equal(t, "CCO", *resp.Reagent.CanonicalSMILES)
	assert.NotEmpty(t, resp.Reagent.Properties)
}

func TestAddReagentValidation(t *testing.T) {
	svc := setupSvc(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, &core.AddReq{ReagentName: str("benzene")})
	assert.ErrorIs(t, err, code.MolWeightRequiredErr)

	_, err = svc.Add(ctx, &core.AddReq{MolecularWeight: weight(10)})
	assert.ErrorIs(t, err, code.ParamErr)

	_, err = svc.Add(ctx, &core.AddReq{
		CanonicalSMILES: str("garbage!!"),
		MolecularWeight: weight(10),
	})
	assert.ErrorIs(t, err, code.InvalidSMILESErr)
}

func TestAddReagentDuplicate(t *testing.T) {
	svc := setupSvc(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, &core.AddReq{ReagentName: str("benzene"), MolecularWeight: weight(78.11)})
	require.NoError(t, err)

	_, err = svc.Add(ctx, &core.AddReq{ReagentName: str("Benzene"), MolecularWeight: weight(78.11)})
	assert.ErrorIs(t, err, code.ReagentExistErr)
	assert.Contains(t, err.Error(), "already stored")

	// 不同写法、同一标准化结构也算重复
	_, err = svc.Add(ctx, &core.AddReq{CanonicalSMILES: str("OCC"), MolecularWeight: weight(46.07)})
	require.NoError(t, err)
	_, err = svc.Add(ctx, &core.AddReq{CanonicalSMILES: str("C(C)O"), MolecularWeight: weight(46.07)})
	assert.ErrorIs(t, err, code.ReagentExistErr)
}

func TestFindReagent(t *testing.T) {
	svc := setupSvc(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, &core.AddReq{
		ReagentName:     str("Ethanol"),
		CanonicalSMILES: str("OCC"),
		MolecularWeight: weight(46.07),
	})
	require.NoError(t, err)

	// 名称大小写不敏感
	byName, err := svc.Find(ctx, &core.FindReq{Name: "ETHANOL"})
	require.NoError(t, err)
	require.NotNil(t, byName.Reagent)
	assert.Equal(t, "ethanol", *byName.Reagent.Name)

	// 另一种写法命中同一结构
	bySmiles, err := svc.Find(ctx, &core.FindReq{SMILES: "C(C)O"})
	require.NoError(t, err)
	require.NotNil(t, bySmiles.Reagent)
	assert.Equal(t, byName.Reagent.ID, bySmiles.Reagent.ID)

	// 未命中不报错，reagent 置空
	missing, err := svc.Find(ctx, &core.FindReq{Name: "toluene"})
	require.NoError(t, err)
	assert.Nil(t, missing.Reagent)

	_, err = svc.Find(ctx, &core.FindReq{})
	assert.ErrorIs(t, err, code.ParamErr)

	_, err = svc.Find(ctx, &core.FindReq{SMILES: "???"})
	assert.ErrorIs(t, err, code.InvalidSMILESErr)
}

func TestSimilarByName(t *testing.T) {
	svc := setupSvc(t)
	ctx := context.Background()

	for _, name := range []string{"benzene", "benzaldehyde", "toluene"} {
		_, err := svc.Add(ctx, &core.AddReq{ReagentName: str(name), MolecularWeight: weight(100)})
		require.NoError(t, err)
	}

	resp, err := svc.SimilarByName(ctx, &core.SimilarReq{Name: "Benz"})
	require.NoError(t, err)
	require.Len(t, resp.Reagents, 2)
	assert.Equal(t, "benzene", *resp.Reagents[0].Name)
	assert.Equal(t, "benzaldehyde", *resp.Reagents[1].Name)

	empty, err := svc.SimilarByName(ctx, &core.SimilarReq{Name: "xeno"})
	require.NoError(t, err)
	assert.Empty(t, empty.Reagents)
}

func TestLookupCompound(t *testing.T) {
	svc := setupSvc(t)
	ctx := context.Background()

	resp, err := svc.LookupCompound(ctx, &core.LookupReq{Name: "ethanol"})
	require.NoError(t, err)
	assert.Equal(t, "Ethanol", resp.Name)
	assert.Equal(t, "C2H6O", resp.MolecularFormula)
	assert.InDelta(t, 46.07, resp.MolecularWeight, 1e-9)
	assert.Equal(t, "CCO", resp.SMILES)

	_, err = svc.LookupCompound(ctx, &core.LookupReq{Name: "unobtainium"})
	assert.ErrorIs(t, err, code.CompoundNotFoundErr)
}
