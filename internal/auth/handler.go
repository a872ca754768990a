package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Handler autentica o operador único do sistema contra as credenciais
// configuradas. Não é uma fronteira de segurança real; substitui a
// checagem estática de credenciais do aplicativo original.
type Handler struct {
	Usuario   string
	Senha     string
	SenhaHash string
	Segredo   string
}

func NewHandler(usuario, senha, senhaHash, segredo string) *Handler {
	return &Handler{Usuario: usuario, Senha: senha, SenhaHash: senhaHash, Segredo: segredo}
}

// Login gera um JWT para credenciais válidas.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Login), []byte(h.Usuario)) != 1 || !h.verificaSenha(req.Password) {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := GerarToken(h.Segredo, h.Usuario)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Prefere o hash bcrypt quando configurado; senão compara o texto puro.
func (h *Handler) verificaSenha(senha string) bool {
	if h.SenhaHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.SenhaHash), []byte(senha)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(senha), []byte(h.Senha)) == 1
}
