package upstream

import (
	"context"
	"net/http"
)

// Document-type and asset-category CRUD follow the identical
// list/create/update/delete shape as the rest of the API.

func (c *Client) GetDocumentTypes(ctx context.Context) ([]DocumentType, error) {
	return getList[DocumentType](c, ctx, "/document-types")
}

func (c *Client) CreateDocumentType(ctx context.Context, dt DocumentType) (*DocumentType, error) {
	var created DocumentType
	if err := c.doJSON(ctx, http.MethodPost, "/document-types", dt, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateDocumentType(ctx context.Context, id string, dt DocumentType) (*DocumentType, error) {
	var updated DocumentType
	if err := c.doJSON(ctx, http.MethodPut, "/document-types/"+id, dt, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteDocumentType(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/document-types/"+id, nil, nil)
}

// UploadDocument pushes one employee document as multipart. Bulk upload is a
// sequence of these calls, one at a time.
func (c *Client) UploadDocument(ctx context.Context, upload DocumentUpload) error {
	fields := map[string]string{
		"employeeId":     upload.EmployeeID,
		"documentTypeId": upload.DocumentTypeID,
	}
	files := map[string]*FilePart{"file": &upload.File}
	return c.doMultipart(ctx, http.MethodPost, "/documents", fields, files, nil)
}

func (c *Client) GetAssetCategories(ctx context.Context) ([]AssetCategory, error) {
	return getList[AssetCategory](c, ctx, "/asset-categories")
}

func (c *Client) CreateAssetCategory(ctx context.Context, cat AssetCategory) (*AssetCategory, error) {
	var created AssetCategory
	if err := c.doJSON(ctx, http.MethodPost, "/asset-categories", cat, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateAssetCategory(ctx context.Context, id string, cat AssetCategory) (*AssetCategory, error) {
	var updated AssetCategory
	if err := c.doJSON(ctx, http.MethodPut, "/asset-categories/"+id, cat, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteAssetCategory(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/asset-categories/"+id, nil, nil)
}
