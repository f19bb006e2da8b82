package main

// overwritten at build time with -ldflags "-X main.buildVersion=..."
var buildVersion = "dev"

func Version() string {
	return buildVersion
}

//
// end of file
//
