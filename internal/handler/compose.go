package handler

import (
	"net/http"

	"github.com/studyhall-dev/studyhall-web/internal/api"
	"github.com/studyhall-dev/studyhall-web/internal/attachments"
	"github.com/studyhall-dev/studyhall-web/internal/errors"
	mw "github.com/studyhall-dev/studyhall-web/internal/middleware"
	"github.com/studyhall-dev/studyhall-web/internal/utils"
)

// ComposeGetHandler renders the attachment gallery of the post being written.
func (h *Handler) ComposeGetHandler(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	bundle := h.Sessions.Get(user).Composer.Bundle()
	gallery := renderGallery(attachments.Aggregate(bundle))

	var templateData struct {
		Gallery  []galleryItem
		Counts   attachments.Counts
		HasMixed bool
		Empty    bool
		Single   bool
		Columns  int
	}
	templateData.Gallery = gallery
	templateData.Counts = bundle.Counts()
	templateData.HasMixed = bundle.HasMixed()
	templateData.Empty = bundle.IsEmpty()
	templateData.Single = len(gallery) == 1
	templateData.Columns = attachments.Columns(len(gallery))

	h.renderTemplate(w, r, "compose.html", templateData)
}

// ComposeAttachPostHandler adds one attachment to the session's bundle.
func (h *Handler) ComposeAttachPostHandler(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	composer := h.Sessions.Get(user).Composer

	var req api.AttachRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	switch attachments.Kind(req.Kind) {
	case attachments.KindImage:
		composer.AddImage(req.Url, req.Name)
	case attachments.KindVideo:
		composer.AddVideo(req.Url, req.Name)
	case attachments.KindDocument:
		composer.AddDocument(req.Name, req.Size)
	case attachments.KindPoll:
		options := make([]string, len(req.Options))
		for i, opt := range req.Options {
			options[i] = opt.Text
		}
		if _, err := composer.AddPoll(req.Question, options); err != nil {
			utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{
				Message: err.Error(), StatusCode: http.StatusBadRequest,
			})
			return
		}
	}

	http.Redirect(w, r, "/compose", http.StatusSeeOther)
}

// ComposeRemovePostHandler serves the gallery's removal affordance. The
// target is keyed by the (collection, id) pair; removing something already
// gone is a harmless no-op.
func (h *Handler) ComposeRemovePostHandler(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	composer := h.Sessions.Get(user).Composer

	composer.Remove(r.FormValue("collection"), r.FormValue("id"))
	http.Redirect(w, r, "/compose", http.StatusSeeOther)
}
