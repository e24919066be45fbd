package handler

type registerRequest struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type updateProfileRequest struct {
	DisplayName    *string `json:"displayName,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

type createDeckRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	IsPublic    bool     `json:"isPublic"`
}

type updateDeckRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPublic    *bool    `json:"isPublic,omitempty"`
}

type createCardRequest struct {
	Front string `json:"front" binding:"required"`
	Back  string `json:"back" binding:"required"`
}

type updateCardRequest struct {
	Front *string `json:"front,omitempty"`
	Back  *string `json:"back,omitempty"`
}

type addCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type rateDeckRequest struct {
	Value int `json:"value" binding:"required"`
}

type suggestAnswerRequest struct {
	FrontText   string `json:"frontText" binding:"required"`
	DeckContext string `json:"deckContext"`
}

type setLockRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}

type issueWarningRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type setHiddenRequest struct {
	Hidden *bool `json:"hidden" binding:"required"`
}
