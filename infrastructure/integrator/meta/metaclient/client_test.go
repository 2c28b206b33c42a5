package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/fb-ads-mcp-server/internal/config"
)

func testResolver(token string) *TokenResolver {
	return NewTokenResolverWithSources(
		func(key string) string {
			if key == TokenEnvVar {
				return token
			}
			return ""
		},
		[]string{"fb-ads-mcp-server"},
	)
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Meta: config.Meta{URL: baseURL},
	}
}

func TestMetaClient_Call_InjectsAccessToken(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testResolver("my-token"))

	params := url.Values{}
	params.Set("fields", "name,account_id")

	body, err := client.Call(context.Background(), "me/adaccounts", params)
	require.NoError(t, err)

	assert.JSONEq(t, `{"data":[]}`, string(body))
	assert.Equal(t, "/me/adaccounts", gotPath)
	assert.Equal(t, "my-token", gotQuery.Get("access_token"))
	assert.Equal(t, "name,account_id", gotQuery.Get("fields"))
}

func TestMetaClient_Call_NilParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "my-token", r.URL.Query().Get("access_token"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testResolver("my-token"))

	_, err := client.Call(context.Background(), "act_123", nil)
	require.NoError(t, err)
}

func TestMetaClient_Call_TokenResolutionFailure(t *testing.T) {
	client := NewClient(testConfig("http://unused"), testResolver(""))

	_, err := client.Call(context.Background(), "me/adaccounts", nil)
	require.Error(t, err)

	var cfgErr *metadomain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestMetaClient_Call_StructuredAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid token","type":"OAuthException","code":190,"fbtrace_id":"AbCd"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testResolver("expired"))

	_, err := client.Call(context.Background(), "me/adaccounts", nil)
	require.Error(t, err)

	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 190, apiErr.Code)
	assert.Equal(t, "Facebook API Error (Code 190): Invalid token", err.Error())
}

func TestMetaClient_Call_UndecodableErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testResolver("tok"))

	_, err := client.Call(context.Background(), "me/adaccounts", nil)
	require.Error(t, err)

	var httpErr *metadomain.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "request failed with status 500 (Internal Server Error)", err.Error())
}

func TestMetaClient_CallAbsoluteURL_DoesNotInjectToken(t *testing.T) {
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[],"paging":{}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig("http://never-used"), testResolver("tok"))

	body, err := client.CallAbsoluteURL(context.Background(), server.URL+"/v22.0/act_123/ads?after=cursor")
	require.NoError(t, err)

	assert.JSONEq(t, `{"data":[],"paging":{}}`, string(body))
	// URLs de paginação já carregam a credencial embutida pela própria API
	assert.Empty(t, gotQuery.Get("access_token"))
	assert.Equal(t, "cursor", gotQuery.Get("after"))
}

type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "dial tcp: i/o timeout" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	t.Run("Timeout de rede vira TimeoutError com mensagem fixa", func(t *testing.T) {
		err := classifyTransportError(fakeTimeoutError{})

		var timeoutErr *metadomain.TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		assert.Equal(t, "Request to Facebook API timed out after 30 seconds", err.Error())
	})

	t.Run("Contexto expirado vira TimeoutError", func(t *testing.T) {
		err := classifyTransportError(context.DeadlineExceeded)

		var timeoutErr *metadomain.TimeoutError
		assert.ErrorAs(t, err, &timeoutErr)
	})

	t.Run("Outras falhas viram NetworkError com a causa encadeada", func(t *testing.T) {
		cause := assert.AnError
		err := classifyTransportError(cause)

		var netErr *metadomain.NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "Network error calling Facebook API")
	})
}
