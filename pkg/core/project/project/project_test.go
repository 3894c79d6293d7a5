package project

import (
	// 外部依赖
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// 内部引用
	code "github.com/openbench/labbook/pkg/common/code"
	core "github.com/openbench/labbook/pkg/core/project"
	db "github.com/openbench/labbook/pkg/middleware/db"
	model "github.com/openbench/labbook/pkg/model"
)

func setupDB(t *testing.T) {
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
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestCreateProject(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	svc := New()

	root, err := svc.Create(ctx, &core.CreateReq{Name: "total synthesis"}, nil)
	require.NoError(t, err)
	require.NotNil(t, root.Project)
	assert.Greater(t, root.Project.ID, int64(0))
	assert.Nil(t, root.Project.ParentID)

	child, err := svc.Create(ctx, &core.CreateReq{Name: "step 1", ParentID: &root.Project.ID}, nil)
	require.NoError(t, err)
	require.NotNil(t, child.Project.ParentID)
	assert.Equal(t, root.Project.ID, *child.Project.ParentID)
}

func TestCreateProjectValidation(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	svc := New()

	_, err := svc.Create(ctx, &core.CreateReq{Name: "   "}, nil)
	assert.ErrorIs(t, err, code.ParamErr)

	missing := int64(9999)
	_, err = svc.Create(ctx, &core.CreateReq{Name: "orphan", ParentID: &missing}, nil)
	assert.ErrorIs(t, err, code.ProjectNotFound)
}

func TestCreateProjectWithImage(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	svc := New()

	resp, err := svc.Create(ctx, &core.CreateReq{Name: "scheme"}, pngBytes(t, 800, 400))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Project.Image)

	raw, err := base64.StdEncoding.DecodeString(resp.Project.Image)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 300)
	assert.LessOrEqual(t, img.Bounds().Dy(), 300)

	_, err = svc.Create(ctx, &core.CreateReq{Name: "broken"}, []byte("not an image"))
	assert.ErrorIs(t, err, code.ProjectImageErr)
}

func TestRoots(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	svc := New()

	first, err := svc.Create(ctx, &core.CreateReq{Name: "alpha"}, nil)
	require.NoError(t, err)
	second, err := svc.Create(ctx, &core.CreateReq{Name: "beta"}, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, &core.CreateReq{Name: "nested", ParentID: &first.Project.ID}, nil)
	require.NoError(t, err)

	resp, err := svc.Roots(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Projects, 2)
	assert.Equal(t, first.Project.ID, resp.Projects[0].ID)
	assert.Equal(t, second.Project.ID, resp.Projects[1].ID)
}

func TestByID(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	svc := New()

	root, err := svc.Create(ctx, &core.CreateReq{Name: "root"}, nil)
	require.NoError(t, err)
	childA, err := svc.Create(ctx, &core.CreateReq{Name: "a", ParentID: &root.Project.ID}, nil)
	require.NoError(t, err)
	childB, err := svc.Create(ctx, &core.CreateReq{Name: "b", ParentID: &root.Project.ID}, nil)
	require.NoError(t, err)

	resp, err := svc.ByID(ctx, &core.IDReq{ID: root.Project.ID})
	require.NoError(t, err)
	require.Len(t, resp.Project.Children, 2)
	assert.Equal(t, childA.Project.ID, resp.Project.Children[0].ID)
	assert.Equal(t, childB.Project.ID, resp.Project.Children[1].ID)

	// 子项目不展开孙辈
	child, err := svc.ByID(ctx, &core.IDReq{ID: childA.Project.ID})
	require.NoError(t, err)
	assert.Empty(t, child.Project.Children)

	_, err = svc.ByID(ctx, &core.IDReq{ID: 12345})
	assert.ErrorIs(t, err, code.ProjectNotFound)
}

func TestPathToRoot(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	svc := New()

	root, err := svc.Create(ctx, &core.CreateReq{Name: "root"}, nil)
	require.NoError(t, err)
	mid, err := svc.Create(ctx, &core.CreateReq{Name: "mid", ParentID: &root.Project.ID}, nil)
	require.NoError(t, err)
	leaf, err := svc.Create(ctx, &core.CreateReq{Name: "leaf", ParentID: &mid.Project.ID}, nil)
	require.NoError(t, err)

	resp, err := svc.PathToRoot(ctx, &core.IDReq{ID: leaf.Project.ID})
	require.NoError(t, err)
	require.Len(t, resp.Path, 3)
	// 叶到根，含自身
	assert.Equal(t, leaf.Project.ID, resp.Path[0].ID)
	assert.Equal(t, mid.Project.ID, resp.Path[1].ID)
	assert.Equal(t, root.Project.ID, resp.Path[2].ID)

	single, err := svc.PathToRoot(ctx, &core.IDReq{ID: root.Project.ID})
	require.NoError(t, err)
	require.Len(t, single.Path, 1)
	assert.Equal(t, root.Project.ID, single.Path[0].ID)

	_, err = svc.PathToRoot(ctx, &core.IDReq{ID: 777})
	assert.ErrorIs(t, err, code.ProjectNotFound)
}
