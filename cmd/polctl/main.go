// Command polctl inspects Group Policy Registry.pol files.
package main

func main() {
	execute()
}
