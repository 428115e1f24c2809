package dto

// CreateContentRequest is the multipart form of the add-content route.
// UploadedAt is caller-supplied; the service parses it. The studyMaterial
// file part is handled separately.
type CreateContentRequest struct {
	TeacherID    int64  `form:"teacherId" binding:"required"`
	ClassName    string `form:"className" binding:"required"`
	Subject      string `form:"subject" binding:"required"`
	Category     string `form:"category" binding:"required"`
	MaterialType string `form:"materialType" binding:"required"`
	UploadedAt   string `form:"uploadedAt" binding:"required"`
}
