package models

import "time"

type Client struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Telefone  string    `json:"telefone"`
	Email     string    `json:"email"`
	Ativo     bool      `json:"ativo"`
	Notas     string    `json:"notas,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Client) EntityID() string { return c.ID }
func (c Client) Clone() Client    { return c }

type ClientPatch struct {
	Nome     *string
	Telefone *string
	Email    *string
	Ativo    *bool
	Notas    *string
}

func (p ClientPatch) Apply(c *Client) {
	if p.Nome != nil {
		c.Nome = *p.Nome
	}
	if p.Telefone != nil {
		c.Telefone = *p.Telefone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Ativo != nil {
		c.Ativo = *p.Ativo
	}
	if p.Notas != nil {
		c.Notas = *p.Notas
	}
}
