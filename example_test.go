package hjarta_test

import (
	"fmt"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/validation"

	"go.uber.org/fx"
)

// ServerService is a service that depends on the configuration tree.
type ServerService struct {
	Config *config.Node
}

// Address returns the server address from config.
func (s *ServerService) Address() string {
	host, _ := s.Config.Find("server:host")
	port, _ := s.Config.Find("server:port")

	return fmt.Sprintf("%v:%v", host, port)
}

// Example_appWithConfigIntegration loads a base file with an environment
// overlay, validates the merged tree at startup and injects it into a service.
func Example_appWithConfigIntegration() {
	serviceModule := fx.Module("service",
		fx.Provide(func(cfg *config.Node) *ServerService {
			return &ServerService{
				Config: cfg,
			}
		}),
	)

	var service *ServerService

	invokeModule := fx.Module("invoke",
		fx.Invoke(func(s *ServerService) {
			service = s
		}),
	)

	app := hjarta.NewApp(
		hjarta.WithLogLevel("error"),
		hjarta.WithConfigFiles("", "testdata/config.yaml", "testdata/config.production.yaml"),
		hjarta.WithValidation(func(rules *validation.Validation) {
			rules.
				Add("server:port", validation.NewBetween(validation.Options{
					validation.OptionMinimum: 1,
					validation.OptionMaximum: 65535,
				})).
				Add("server:mode", validation.NewIdentical(validation.Options{
					validation.OptionValue: "production",
				}))
		}),
		hjarta.WithModules(serviceModule, invokeModule),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	adapter, _ := service.Config.Find("database:adapter")

	fmt.Printf("Server address: %s\n", service.Address())
	fmt.Printf("Database adapter: %v\n", adapter)
	// Output:
	// Server address: api.example.com:9000
	// Database adapter: Mysql
}
