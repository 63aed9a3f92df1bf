package lib

type tokenReader interface {
	Next() Token
	Peek() Token
}
