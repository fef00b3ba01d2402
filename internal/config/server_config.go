package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github/chapool/go-receive/internal/util"
)

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestHeader   bool
	LogResponseHeader  bool
	PrettyPrintConsole bool
}

type Management struct {
	ReadinessTimeout time.Duration
	LivenessTimeout  time.Duration
	EnableMetrics    bool
}

// Receive configures the verification of receive addresses.
type Receive struct {
	RequestTimeout     time.Duration
	DeviceProfilesFile string
	// PlugDefaultDevice plugs the built-in emulator profile at startup.
	PlugDefaultDevice bool
	// ConfirmMode overrides the confirm mode of every profile if set.
	ConfirmMode string
}

// Keyring configures the host keyring the fresh addresses are derived from.
type Keyring struct {
	Mnemonic   string `json:"-"`
	Passphrase string `json:"-"`
	// PromptPassphrase asks for the passphrase on the terminal.
	PromptPassphrase bool
}

// CurrencyStatus configures the currency disruption feed.
type CurrencyStatus struct {
	URL             string
	RefreshInterval time.Duration
	Timeout         time.Duration
}

type Server struct {
	Echo           EchoServer
	Management     Management
	Logger         LoggerServer
	Receive        Receive
	Keyring        Keyring
	CurrencyStatus CurrencyStatus
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in your project root can override the currently set ENV variables.
	//
	// We never automatically apply `.env.local` when running "go test" as these ENV variables
	// may be sensitive (e.g. secrets to external APIs) and applying them modifies the process-global "os.Env" state (it should be applied via t.SetEnv instead).
	//
	// If you need dotenv ENV variables available in a test, load them explicitly with DotEnvLoad and t.Setenv.
	if !util.RunningInTest() {
		DotEnvTryLoad(filepath.Join(util.GetProjectRootDir(), ".env.local"), os.Setenv)
	}

	return Server{
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableTrailingSlashMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true),
		},
		Management: Management{
			ReadinessTimeout: util.GetEnvAsDuration("SERVER_MANAGEMENT_READINESS_TIMEOUT", 4*time.Second),
			LivenessTimeout:  util.GetEnvAsDuration("SERVER_MANAGEMENT_LIVENESS_TIMEOUT", 9*time.Second),
			EnableMetrics:    util.GetEnvAsBool("SERVER_MANAGEMENT_ENABLE_METRICS", true),
		},
		Logger: LoggerServer{
			Level:              util.GetEnvAsLogLevel("SERVER_LOGGER_LEVEL", zerolog.DebugLevel),
			RequestLevel:       util.GetEnvAsLogLevel("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel),
			LogRequestHeader:   util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_HEADER", false),
			LogResponseHeader:  util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_HEADER", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Receive: Receive{
			RequestTimeout:     util.GetEnvAsDuration("SERVER_RECEIVE_REQUEST_TIMEOUT", 2*time.Minute),
			DeviceProfilesFile: util.GetEnv("SERVER_RECEIVE_DEVICE_PROFILES_FILE", ""),
			PlugDefaultDevice:  util.GetEnvAsBool("SERVER_RECEIVE_PLUG_DEFAULT_DEVICE", true),
			ConfirmMode:        util.GetEnv("SERVER_RECEIVE_CONFIRM_MODE", ""),
		},
		Keyring: Keyring{
			Mnemonic:         util.GetEnv("SERVER_KEYRING_MNEMONIC", ""),
			Passphrase:       util.GetEnv("SERVER_KEYRING_PASSPHRASE", ""),
			PromptPassphrase: util.GetEnvAsBool("SERVER_KEYRING_PROMPT_PASSPHRASE", false),
		},
		CurrencyStatus: CurrencyStatus{
			URL:             util.GetEnv("SERVER_CURRENCY_STATUS_URL", ""),
			RefreshInterval: util.GetEnvAsDuration("SERVER_CURRENCY_STATUS_REFRESH_INTERVAL", 5*time.Minute),
			Timeout:         util.GetEnvAsDuration("SERVER_CURRENCY_STATUS_TIMEOUT", 10*time.Second),
		},
	}
}
