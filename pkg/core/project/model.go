package project

type CreateReq struct {
	Name     string `form:"name" json:"name"`
	ParentID *int64 `form:"parentId" json:"parentId"`
}

type IDReq struct {
	ID int64 `uri:"id" binding:"required"`
}

type ProjectResp struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parentId"`
	// Image 为 base64 编码的缩略图，无图时省略
	Image    string         `json:"image,omitempty"`
	Children []*ProjectResp `json:"children,omitempty"`
}

type ProjectWrap struct {
	Project *ProjectResp `json:"project"`
}

type ListResp struct {
	Projects []*ProjectResp `json:"projects"`
}

type PathResp struct {
	Path []*ProjectResp `json:"path"`
}
