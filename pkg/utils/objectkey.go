package utils

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// AttachmentObjectKey returns a collision-free object key for an upload on an issue.
func AttachmentObjectKey(issueID uint, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	return fmt.Sprintf("issues/%d/%s-%s", issueID, uuid.New().String(), name)
}
