package metaclient

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/domain"
)

// Variável de ambiente consultada antes das flags de linha de comando
const TokenEnvVar = "FB_ACCESS_TOKEN"

const tokenFlag = "--fb-token"

// TokenResolver resolve o access token do Facebook uma única vez por
// processo. A resolução segue a ordem: variável de ambiente FB_ACCESS_TOKEN,
// depois a flag --fb-token nos argumentos do processo. O resultado (token ou
// erro) é memoizado via sync.Once, então chamadas concorrentes na primeira
// invocação são seguras e leituras subsequentes não reconsultam as fontes.
type TokenResolver struct {
	once  sync.Once
	token string
	err   error

	getenv func(string) string
	args   []string
}

func NewTokenResolver() *TokenResolver {
	return &TokenResolver{
		getenv: os.Getenv,
		args:   os.Args,
	}
}

// NewTokenResolverWithSources permite injetar as fontes de configuração.
// Usado em testes.
func NewTokenResolverWithSources(getenv func(string) string, args []string) *TokenResolver {
	return &TokenResolver{
		getenv: getenv,
		args:   args,
	}
}

// Resolve retorna o token memoizado, resolvendo-o na primeira chamada
func (r *TokenResolver) Resolve() (string, error) {
	r.once.Do(func() {
		r.token, r.err = r.resolve()
		if r.err == nil {
			logrus.Debug("Access token do Facebook resolvido e memoizado")
		}
	})
	return r.token, r.err
}

func (r *TokenResolver) resolve() (string, error) {
	token := r.getenv(TokenEnvVar)

	if token == "" {
		flagToken, err := r.tokenFromArgs()
		if err != nil {
			return "", err
		}
		token = flagToken
	}

	if strings.TrimSpace(token) == "" {
		return "", metadomain.NewConfigurationError("Facebook access token cannot be empty")
	}

	return token, nil
}

// tokenFromArgs procura o valor posicional imediatamente após --fb-token.
// Distingue "flag presente sem valor" de "nenhuma fonte informada".
func (r *TokenResolver) tokenFromArgs() (string, error) {
	for i, arg := range r.args {
		if arg != tokenFlag {
			continue
		}
		if i+1 >= len(r.args) {
			return "", metadomain.NewConfigurationError("--fb-token flag provided but no token value found")
		}
		return r.args[i+1], nil
	}

	return "", metadomain.NewConfigurationError(
		"Facebook access token not provided. " +
			"Set FB_ACCESS_TOKEN environment variable or run with: --fb-token YOUR_TOKEN")
}
