package namespace_test

import (
	"fmt"

	"github.com/MKhiriev/staticconfig/namespace"
)

func ExampleNamespace_Section() {
	root := namespace.New()
	root.MustSection("server").MustSection("http").MustSet("port", 8080)

	port, _ := root.Resolve("server.http.port")
	fmt.Println(port)

	data, _ := root.MarshalJSON()
	fmt.Println(string(data))
	// Output:
	// 8080
	// {"server":{"http":{"port":8080}}}
}

func ExampleWithPolicy() {
	strict := namespace.New(namespace.WithPolicy(namespace.Strict))

	_, err := strict.Get("missing")
	fmt.Println(err)
	// Output: key not found: "missing"
}
