package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/studyhall-dev/studyhall-web/internal/attachments"
	"github.com/studyhall-dev/studyhall-web/internal/domain"
	"github.com/studyhall-dev/studyhall-web/internal/logger"
	mw "github.com/studyhall-dev/studyhall-web/internal/middleware"
	"github.com/studyhall-dev/studyhall-web/internal/notifications"
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common domain.CommonTemplateData
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	tmpl, ok := h.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	common := domain.CommonTemplateData{User: mw.GetUserFromContext(r)}
	if common.User != nil {
		common.Notices = h.Sessions.DrainNotices(common.User)
	}

	wrapped := TemplateData{
		Data:   data,
		Common: common,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	_, _ = buf.WriteTo(w)
}

// notificationView transforms a store view into a template-ready model. The
// content was sanitized during normalization and renders unescaped.
type notificationView struct {
	notifications.View
	Content template.HTML
}

func renderNotifications(views []notifications.View) []notificationView {
	rendered := make([]notificationView, len(views))
	for i, v := range views {
		rendered[i] = notificationView{View: v, Content: template.HTML(v.Content)}
	}
	return rendered
}

// galleryItem is one aggregated attachment flattened for templates, with
// the removal key the gallery posts back.
type galleryItem struct {
	Kind        attachments.Kind
	Id          string
	Url         string
	Name        string
	SizeLabel   string
	Question    string
	Options     []attachments.Option
	OptionCount int
	Collection  string
}

func renderGallery(items []attachments.Attachment) []galleryItem {
	rendered := make([]galleryItem, len(items))
	for i, item := range items {
		ref := item.Ref()
		view := galleryItem{Kind: item.Kind(), Id: ref.Id, Collection: ref.Collection}
		switch a := item.(type) {
		case attachments.Image:
			view.Url = a.Url
			view.Name = a.Name
		case attachments.Video:
			view.Url = a.Url
			view.Name = a.Name
		case attachments.Document:
			view.Name = a.Name
			view.SizeLabel = attachments.FormatFileSize(a.SizeBytes)
		case attachments.Poll:
			view.Question = a.Question
			view.Options = a.Options
			view.OptionCount = len(a.Options)
		}
		rendered[i] = view
	}
	return rendered
}
