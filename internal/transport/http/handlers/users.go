package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-filmorate/internal/transport/http/errors"
)

// CreateUser — POST /users, ответ 201; пустое имя заменяется логином.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in User
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	user, err := h.People.Create(r.Context(), in.ToInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, UserFromModel(user))
}

// UpdateUser — PUT /users, id берётся из тела; друзья не меняются.
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var in User
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	user, err := h.People.Update(r.Context(), in.ToInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UserFromModel(user))
}

// ListUsers — GET /users.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.People.People(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UsersFromModels(users))
}

// GetUser — GET /users/{id}.
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	user, err := h.People.PersonByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UserFromModel(user))
}

// AddFriend — PUT /users/{id}/friends/{friendId}, дружба взаимна.
func (h *Handlers) AddFriend(w http.ResponseWriter, r *http.Request) {
	id, friendID, err := pairParams(r, "friendId")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.People.AddFriend(r.Context(), id, friendID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteFriend — DELETE /users/{id}/friends/{friendId}.
func (h *Handlers) DeleteFriend(w http.ResponseWriter, r *http.Request) {
	id, friendID, err := pairParams(r, "friendId")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.People.DeleteFriend(r.Context(), id, friendID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ListFriends — GET /users/{id}/friends.
func (h *Handlers) ListFriends(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	friends, err := h.People.Friends(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UsersFromModels(friends))
}

// CommonFriends — GET /users/{id}/friends/common/{otherId}.
func (h *Handlers) CommonFriends(w http.ResponseWriter, r *http.Request) {
	id, otherID, err := pairParams(r, "otherId")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	common, err := h.People.CommonFriends(r.Context(), id, otherID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UsersFromModels(common))
}

func pairParams(r *http.Request, second string) (int64, int64, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return 0, 0, err
	}

	other, err := pathID(r, second)
	if err != nil {
		return 0, 0, err
	}

	return id, other, nil
}
