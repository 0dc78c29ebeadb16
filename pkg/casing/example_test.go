package casing_test

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/lwcharts/pkg/casing"
)

func ExampleSnakeToCamel() {
	fmt.Println(casing.SnakeToCamel("price_scale_id"))
	fmt.Println(casing.SnakeToCamel("_private_field"))
	fmt.Println(casing.SnakeToCamel("option_123_value"))
	// Output:
	// priceScaleId
	// PrivateField
	// option123Value
}

func ExampleCamelToSnake() {
	fmt.Println(casing.CamelToSnake("priceScaleId"))
	fmt.Println(casing.CamelToSnake("HTTPStatus"))
	// Output:
	// price_scale_id
	// h_t_t_p_status
}

func ExampleConvertKeys() {
	in := map[string]any{
		"line_width": 2,
		"scale_margins": map[string]any{"top_margin": 0.1},
	}
	out := casing.ConvertKeys(in, casing.ToCamel, true)
	b, _ := json.Marshal(out)
	fmt.Println(string(b))
	// Output:
	// {"lineWidth":2,"scaleMargins":{"topMargin":0.1}}
}
