package main

import (
	_ "tagshop_variants/docs"
	"tagshop_variants/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Tagshop Variant Service API
// @version         1.0
// @description     Prices custom tag configurations and finds-or-creates the matching Shopify variant.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000

// @BasePath  /

func main() {
	routes.Run()
}
