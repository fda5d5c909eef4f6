package main

import "github.com/vibast-solutions/ms-go-billpay/cmd"

func main() {
	cmd.Execute()
}
