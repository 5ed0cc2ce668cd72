package dto

// DeleteProductsRequest carries the raw id list. Elements are kept untyped
// so the handler can coerce and reject them explicitly, matching clients
// that send numbers and clients that send numeric strings.
type DeleteProductsRequest struct {
	Ids []any `json:"ids" binding:"required"`
}
