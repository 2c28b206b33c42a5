package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// ConfigurationError indica credencial ausente ou inválida na inicialização.
// Fatal: o servidor não deve expor nenhuma tool sem um token válido.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

func NewConfigurationError(reason string) *ConfigurationError {
	return &ConfigurationError{Reason: reason}
}

// APIError representa um erro estruturado retornado pela Graph API
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Facebook API Error (Code %d): %s", e.Code, e.Message)
}

// TimeoutError indica que a requisição excedeu o timeout fixo de 30s.
// A mensagem é fixa e nunca expõe o erro de transporte subjacente.
type TimeoutError struct{}

func (e *TimeoutError) Error() string {
	return "Request to Facebook API timed out after 30 seconds"
}

// NetworkError encapsula qualquer outra falha de transporte
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Network error calling Facebook API: %s", e.Err.Error())
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError representa uma resposta não-2xx sem corpo de erro decodificável
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed with status %d (%s)", e.StatusCode, e.Status)
}
