package main

import (
	"github.com/HarshaVardhank74/Nutricook/config"
	"github.com/HarshaVardhank74/Nutricook/routes"
	"github.com/HarshaVardhank74/Nutricook/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
