package config_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/staticconfig/config"
	"github.com/MKhiriev/staticconfig/namespace"
)

func appDefaults(root *namespace.Namespace) error {
	root.MustSet("name", "example")
	root.MustDeclare("server").MustSet("host", "localhost").MustSet("port", 8080)
	return nil
}

func ExampleLoader_FromJSON() {
	dir, _ := os.MkdirTemp("", "staticconfig-example")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "config.json")

	loader := config.NewLoader(appDefaults)

	res, err := loader.FromJSON(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Status)

	_ = os.WriteFile(path, []byte(`{"server": {"port": 9090}}`), 0o600)
	res, err = loader.FromJSON(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	port, _ := res.Config.Resolve("server.port")
	fmt.Println(res.Status, port)
	// Output:
	// template generated
	// loaded 9090
}

func ExampleLoader_FromMap() {
	loader := config.NewLoader(appDefaults)

	_, err := loader.FromMap(map[string]any{"server": map[string]any{"prot": 1}})
	fmt.Println(err)

	cfg, _ := loader.FromMap(map[string]any{"name": "custom"})
	data, _ := config.Marshal(cfg.Namespace)
	fmt.Print(string(data))
	// Output:
	// config error: unexpected config option: 'server.prot'
	// {
	//   "name": "custom",
	//   "server": {
	//     "host": "localhost",
	//     "port": 8080
	//   }
	// }
}
