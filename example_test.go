package docxparse_test

import (
	"fmt"
	"log"

	"github.com/tsawler/docxparse"
)

func ExampleOpen() {
	p, err := docxparse.Open("report.docx")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	doc, err := p.Parse()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(doc.Paragraphs), "paragraphs")
}

func ExampleParser_ToMarkdown() {
	p, err := docxparse.Open("report.docx")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	md, err := p.ToMarkdown("report.md")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(md)
}

func ExampleExtractHeadings() {
	headings, err := docxparse.ExtractHeadings("report.docx")
	if err != nil {
		log.Fatal(err)
	}
	for _, h := range headings {
		fmt.Printf("%d %s\n", h.Level, h.Text)
	}
}

func ExampleParser_ExtractImages() {
	p := docxparse.Must(docxparse.Open("report.docx"))
	defer p.Close()

	for _, path := range docxparse.Must(p.ExtractImages("media")) {
		fmt.Println(path)
	}
}
