package public

import (
	"strconv"
	"strings"

	"github.com/civeni/civeni-api/internal/http/response"
	"github.com/civeni/civeni-api/internal/i18n"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitWork receives an academic work submission as a multipart form with
// an optional attached document.
func (h *Handler) SubmitWork(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.PostForm("event_id"), 10, 64)
	if err != nil || eventID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	input := service.SubmitInput{
		EventID:      uint(eventID),
		AuthorName:   c.PostForm("author_name"),
		AuthorEmail:  c.PostForm("author_email"),
		CoAuthors:    splitCoAuthors(c.PostForm("co_authors")),
		Title:        c.PostForm("title"),
		Abstract:     c.PostForm("abstract"),
		ThematicArea: c.PostForm("thematic_area"),
		Locale:       i18n.ResolveLocale(c),
	}
	if file, err := c.FormFile("file"); err == nil {
		input.File = file
	}

	work, message, err := h.WorkService.Submit(input)
	if err != nil {
		respondWorkSubmitError(c, err)
		return
	}
	requestLog(c).Infow("work_submitted",
		"work_id", work.ID,
		"event_id", work.EventID,
		"thematic_area", work.ThematicArea,
	)
	response.SuccessWithMsg(c, message, work)
}

func splitCoAuthors(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
