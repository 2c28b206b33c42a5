package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/fb-ads-mcp-server/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Timeout fixo de toda requisição contra a Graph API
const requestTimeout = 30 * time.Second

// Client é o gateway de leitura contra a Graph API do Meta.
// Call injeta o access token resolvido nos parâmetros; CallAbsoluteURL
// assume que a URL (devolvida pela própria API em paging.next/previous)
// já carrega a credencial embutida.
type Client interface {
	Call(ctx context.Context, endpoint string, params url.Values) ([]byte, error)
	CallAbsoluteURL(ctx context.Context, rawURL string) ([]byte, error)
}

type MetaClient struct {
	cfg        *config.Config
	resolver   *TokenResolver
	httpClient *http.Client
}

func NewClient(cfg *config.Config, resolver *TokenResolver) Client {
	return &MetaClient{
		cfg:      cfg,
		resolver: resolver,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Call executa um GET contra {META_URL}/{endpoint} com o token injetado
func (c *MetaClient) Call(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	token, err := c.resolver.Resolve()
	if err != nil {
		return nil, err
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", token)

	requestURL := fmt.Sprintf("%s/%s?%s", c.cfg.Meta.URL, endpoint, params.Encode())

	return c.doRequest(ctx, requestURL)
}

// CallAbsoluteURL executa um GET contra uma URL de paginação completa,
// sem injetar credencial
func (c *MetaClient) CallAbsoluteURL(ctx context.Context, rawURL string) ([]byte, error) {
	return c.doRequest(ctx, rawURL)
}

// doRequest centraliza a chamada HTTP e a classificação de erros.
// Gateway e passthrough de paginação compartilham o mesmo caminho,
// parametrizado apenas pela injeção (ou não) da credencial nos callers.
func (c *MetaClient) doRequest(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &metadomain.NetworkError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &metadomain.NetworkError{Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	return nil, classifyErrorResponse(resp, body)
}

// classifyTransportError distingue timeout de outras falhas de rede.
// O TimeoutError carrega mensagem fixa, nunca a do transporte.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &metadomain.TimeoutError{}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &metadomain.TimeoutError{}
	}
	return &metadomain.NetworkError{Err: err}
}

// classifyErrorResponse tenta decodificar o corpo como erro estruturado do
// Meta. Falha de decode é engolida e o erro HTTP genérico propaga como está.
func classifyErrorResponse(resp *http.Response, body []byte) error {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
		if errorResp.IsTokenExpired() {
			logrus.WithFields(logrus.Fields{
				"code":    errorResp.Error.Code,
				"subcode": errorResp.Error.ErrorSubcode,
			}).Warn("Token expirado ou inválido detectado pela API Meta")
		}
		return &metadomain.APIError{
			Code:    errorResp.Error.Code,
			Message: errorResp.Error.Message,
		}
	}

	return &metadomain.HTTPError{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
	}
}
