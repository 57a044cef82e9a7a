package main

import (
	"github.com/eclarke/melt/internal/appshell"
	"github.com/eclarke/melt/internal/meltapp"
)

func main() { appshell.Main(meltapp.RunContext) }
