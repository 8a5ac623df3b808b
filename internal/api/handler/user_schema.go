package handler

// updateUserRequest uses pointers so omitted fields leave the stored value
// untouched. Setting is_active to false is the soft-deactivation path.
type updateUserRequest struct {
	FullName *string `json:"full_name"`
	RoleID   *int64  `json:"role_id"`
	IsActive *bool   `json:"is_active"`
}
