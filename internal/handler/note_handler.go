package handler

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"noteauth/internal/errors"
	"noteauth/internal/model"
	"noteauth/internal/service"
)

const noteNotFound = "Note is not found"

// RouteGetNote names the get-note route so Location headers can be reversed.
const RouteGetNote = "notes.get"

// NoteRequest is the body of note create and update calls.
type NoteRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}

// NoteResponse is the public shape of a note.
type NoteResponse struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"userId"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func newNoteResponse(n *model.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// NoteHandler handles note endpoints scoped under a user id.
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// CreateNote godoc
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body NoteRequest true "Note payload"
// @Success 201 {object} NoteResponse
// @Header 201 {string} Location "URL of the created note"
// @Failure 400 {object} errors.ProblemDetails
// @Router /users/{userId}/notes [post]
func (h *NoteHandler) CreateNote(c echo.Context) error {
	var req NoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	userID, ok, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	if !ok {
		return invalidValue(c.Param("userId"))
	}

	note, err := h.noteService.CreateNote(c.Request().Context(), userID, req.Text)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, noteLocation(c, note))
	return c.JSON(http.StatusCreated, newNoteResponse(note))
}

// GetNote godoc
// @Summary Get a note
// @Tags notes
// @Produce json
// @Param userId path int true "User ID"
// @Param id path int true "Note ID"
// @Success 200 {object} NoteResponse
// @Failure 404 {object} errors.ProblemDetails
// @Router /users/{userId}/notes/{id} [get]
func (h *NoteHandler) GetNote(c echo.Context) error {
	userID, id, ok, err := notePath(c)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NotFound(noteNotFound)
	}
	note, err := h.noteService.GetNote(c.Request().Context(), userID, id)
	if err != nil {
		return mapNoteError(err)
	}
	return c.JSON(http.StatusOK, newNoteResponse(note))
}

// UpdateNote godoc
// @Summary Replace the text of a note
// @Tags notes
// @Accept json
// @Param userId path int true "User ID"
// @Param id path int true "Note ID"
// @Param request body NoteRequest true "Note payload"
// @Success 204
// @Failure 400 {object} errors.ProblemDetails
// @Failure 404 {object} errors.ProblemDetails
// @Router /users/{userId}/notes/{id} [put]
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	var req NoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	userID, id, ok, err := notePath(c)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NotFound(noteNotFound)
	}
	if err := h.noteService.UpdateNote(c.Request().Context(), userID, id, req.Text); err != nil {
		return mapNoteError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteNote godoc
// @Summary Delete a note
// @Description Succeeds whether or not the note exists.
// @Tags notes
// @Param userId path int true "User ID"
// @Param id path int true "Note ID"
// @Success 204
// @Router /users/{userId}/notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	userID, id, ok, err := notePath(c)
	if err != nil {
		return err
	}
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	if err := h.noteService.DeleteNote(c.Request().Context(), userID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListNotes godoc
// @Summary List a user's notes
// @Tags notes
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} NoteResponse
// @Router /users/{userId}/notes [get]
func (h *NoteHandler) ListNotes(c echo.Context) error {
	userID, ok, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(http.StatusOK, []NoteResponse{})
	}
	notes, err := h.noteService.ListNotes(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, newNoteResponse(&notes[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// notePath parses userId and id. ok is false when either is negative.
func notePath(c echo.Context) (userID, id uint, ok bool, err error) {
	userID, userOK, err := pathID(c, "userId")
	if err != nil {
		return 0, 0, false, err
	}
	id, idOK, err := pathID(c, "id")
	if err != nil {
		return 0, 0, false, err
	}
	return userID, id, userOK && idOK, nil
}

// noteLocation points at the get route that serves n.
func noteLocation(c echo.Context, n *model.Note) string {
	if uri := c.Echo().Reverse(RouteGetNote, n.UserID, n.ID); uri != "" {
		return uri
	}
	return fmt.Sprintf("/api/v1/users/%d/notes/%d", n.UserID, n.ID)
}

func mapNoteError(err error) error {
	if stderrors.Is(err, service.ErrNoteNotFound) {
		return errors.NotFound(noteNotFound)
	}
	return err
}
