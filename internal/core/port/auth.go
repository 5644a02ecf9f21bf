package port

type TokenPayload struct {
	Login string
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(login string) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
