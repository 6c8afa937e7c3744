package config

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/opencontrail/vrouter-ctl/pkg/types"
)

var (
	// DefaultVRouterURL is the port API endpoint of the local vrouter agent
	DefaultVRouterURL = "http://127.0.0.1:9091"
	// DefaultLogLevel used when --log-level is not given
	DefaultLogLevel = "info"
)

// Config holds every value vrouter-ctl reads from its command line, except the positionals.
type Config struct {
	MacAddress string
	VM         string
	VMI        string
	Interface  string

	VRouterURL string
	Timeout    time.Duration

	LogLevel string
	LogFile  string
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		VRouterURL: DefaultVRouterURL,
		LogLevel:   DefaultLogLevel,
	}
}

// AddFlags binds the fields of c to flags in fs.
func AddFlags(c *Config, fs *pflag.FlagSet) {
	fs.StringVar(&c.MacAddress, "mac-address", c.MacAddress, "MAC address of the port")
	fs.StringVar(&c.VM, "vm", c.VM, "Virtual machine (instance) identifier")
	fs.StringVar(&c.VMI, "vmi", c.VMI, "Virtual machine interface identifier")
	fs.StringVar(&c.Interface, "interface", c.Interface, "Host side interface name")

	fs.StringVar(&c.VRouterURL, "vrouter-url", c.VRouterURL, "vrouter agent port API endpoint")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "Timeout of the vrouter agent request, 0 waits forever")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: panic, error, warning, info, debug or verbose")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Log file, empty logs to stderr")
}

// Port returns the port described by c, named after the docker container.
func (c *Config) Port(dockerID string) *types.Port {
	return &types.Port{
		VMID:          c.VM,
		VMIID:         c.VMI,
		InterfaceName: c.Interface,
		MacAddress:    c.MacAddress,
		Type:          types.NovaVMPort,
		DisplayName:   dockerID,
	}
}
