package models

import "github.com/google/uuid"

type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (c *Client) Prepare() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
}

// ClientPatch holds the fields of an update. Nil fields are left unchanged.
type ClientPatch struct {
	Name  *string
	Email *string
	Phone *string
}

func (p ClientPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil
}

func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
}
