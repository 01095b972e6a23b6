package dumpr_test

import (
	"fmt"
	"os"

	"github.com/bjaus/dumpr"
)

func ExampleDump() {
	type server struct {
		Host string
		Port int
	}

	out, _ := dumpr.Dump(server{Host: "localhost", Port: 8080})
	fmt.Print(out)
	// Output:
	// server
	//	Host = localhost
	//	Port = 8080
}

func ExampleNew() {
	type user struct {
		Name  string
		Email string
		ID    int
	}

	// Drop the email and print IDs in hex.
	p, _ := dumpr.New(
		dumpr.ExcludeField[user]("Email"),
		dumpr.FormatType[int](func(n int) string { return fmt.Sprintf("%#x", n) }),
	)

	out, _ := p.Dump(user{Name: "Ada", Email: "ada@example.com", ID: 119})
	fmt.Print(out)
	// Output:
	// user
	//	Name = Ada
	//	ID = 0x77
}

func ExamplePrinter_Write() {
	type job struct {
		Queue    string
		Attempts int
	}

	p := dumpr.MustNew()
	_ = p.Write(os.Stdout, job{Queue: "billing", Attempts: 3})
	// Output:
	// job
	//	Queue = billing
	//	Attempts = 3
}

func ExampleFormatField() {
	type quote struct {
		Author string
		Text   string
	}

	p := dumpr.MustNew(dumpr.FormatField[quote]("Text", dumpr.Trimmed(9)))

	out, _ := p.Dump(quote{Author: "anon", Text: "The quick brown fox"})
	fmt.Print(out)
	// Output:
	// quote
	//	Author = anon
	//	Text = The quick
}

func ExampleWithProfileYAML() {
	type login struct {
		User     string
		Password string
	}

	// Profiles scrub output without referencing the Go types.
	profile := []byte("redact_fields: [login.Password]")
	p := dumpr.MustNew(dumpr.WithProfileYAML(profile))

	out, _ := p.Dump(login{User: "ada", Password: "hunter2"})
	fmt.Print(out)
	// Output:
	// login
	//	User = ada
	//	Password = [REDACTED]
}
