package transform

import (
	"fakestoredw/internal/domain"
	"fakestoredw/internal/domain/dto"
)

// Плейсхолдер для пропущенных значений, как в витрине.
const notInformed = "Não informado"

// Users flattens the raw user payload into the users table. The fill is
// table-wide: lat/long arrive as strings from the source and get the same
// placeholder as the other textual columns.
func Users(raw []dto.RawUser) []domain.User {
	users := make([]domain.User, 0, len(raw))
	for _, r := range raw {
		users = append(users, domain.User{
			UserID:    r.ID,
			FirstName: textOrPlaceholder(r.Name.Firstname),
			LastName:  textOrPlaceholder(r.Name.Lastname),
			Email:     textOrPlaceholder(r.Email),
			Username:  textOrPlaceholder(r.Username),
			City:      textOrPlaceholder(r.Address.City),
			Lat:       textOrPlaceholder(r.Address.Geolocation.Lat),
			Long:      textOrPlaceholder(r.Address.Geolocation.Long),
		})
	}
	return users
}

func textOrPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return notInformed
	}
	return *s
}
