package responses

type UpsertUser struct {
	Result      *UpdateResult `json:"result"`
	AccessToken string        `json:"accessToken"`
}
