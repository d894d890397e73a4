// cmd/seeder writes the mock startup-leads dataset used for local
// development and demos.
// Usage: go run cmd/seeder/main.go --out ./data/mock_startup_leads.csv
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
)

var header = []string{"Company Name", "Location", "Funding Stage", "Funding Amount", "Tech Stack", "Hiring", "Founder Name", "Email"}

// mockLeads is deterministic so the embedding index and every demo query
// behave the same on every machine.
var mockLeads = [][]string{
	{"NeuraGrid", "San Francisco, CA", "Series A", "$5M", "Python, PyTorch, Kubernetes", "Yes", "Priya Raman", "priya@neuragrid.ai"},
	{"Finlytics", "New York, NY", "Series B", "$50M", "Java, Kafka, Snowflake", "Yes", "Marcus Webb", "marcus@finlytics.com"},
	{"GreenVolt", "Austin, TX", "Seed", "$750K", "Go, TimescaleDB", "No", "Elena Torres", "elena@greenvolt.io"},
	{"MediScan AI", "London, UK", "Series A", "$10M", "Python, TensorFlow, GCP", "Yes", "Oliver Hughes", "oliver@mediscan.ai"},
	{"CargoChain", "Rotterdam, NL", "Seed", "$900K", "Rust, PostgreSQL", "No", "Sanne de Vries", "sanne@cargochain.eu"},
	{"PixelForge", "Berlin, DE", "Series A", "$4M", "TypeScript, React, Node.js", "Yes", "Jonas Keller", "jonas@pixelforge.dev"},
	{"AgroSense", "Bangalore, IN", "Seed", "$500K", "Python, IoT, AWS", "Yes", "Ananya Iyer", "ananya@agrosense.in"},
	{"QuantumLeap", "Boston, MA", "Series B", "$10M", "Q#, Python, Azure", "No", "David Chen", "david@quantumleap.tech"},
	{"ShopStream", "New York, NY", "Seed", "$1M", "Ruby on Rails, Redis", "Yes", "Rachel Gold", "rachel@shopstream.com"},
	{"CyberShield", "Tel Aviv, IL", "Series A", "$8M", "Go, eBPF, Kubernetes", "Yes", "Yossi Baram", "yossi@cybershield.io"},
	{"EduMatrix", "Toronto, CA", "Seed", "$600K", "Vue.js, Firebase", "No", "Grace Liu", "grace@edumatrix.ca"},
	{"VoltRide", "San Francisco, CA", "Series B", "$50M", "C++, ROS, Python", "Yes", "Arjun Mehta", "arjun@voltride.com"},
	{"BioNimbus", "Cambridge, UK", "Series A", "$5M", "Python, Nextflow, AWS", "No", "Fiona Clarke", "fiona@bionimbus.co.uk"},
	{"StreamSage", "Seattle, WA", "Seed", "$2M", "Scala, Flink, Kafka", "Yes", "Tom Drake", "tom@streamsage.io"},
	{"UrbanNest", "London, UK", "Seed", "$450K", "PHP, Laravel, MySQL", "No", "Amara Okafor", "amara@urbannest.uk"},
	{"DeepHarvest", "Amsterdam, NL", "Series A", "$1M", "Python, OpenCV, Edge AI", "Yes", "Lucas Bakker", "lucas@deepharvest.nl"},
	{"PayLoop", "Singapore, SG", "Series B", "$10M", "Kotlin, Spring, Postgres", "Yes", "Wei Lin Tan", "weilin@payloop.sg"},
	{"AeroSwift", "Denver, CO", "Seed", "$800K", "C, Embedded, RTOS", "No", "Hannah Brooks", "hannah@aeroswift.aero"},
	{"LegalMind", "New York, NY", "Series A", "$5M", "Python, LangChain, OpenAI", "Yes", "Victor Alvarez", "victor@legalmind.law"},
	{"OceanPulse", "Lisbon, PT", "Seed", "$300K", "Go, InfluxDB, MQTT", "No", "Ines Carvalho", "ines@oceanpulse.pt"},
}

func main() {
	out := flag.String("out", "./data/mock_startup_leads.csv", "Path to write the mock leads CSV")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), os.ModePerm); err != nil {
		log.Fatalf("Cannot create output directory: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Cannot create %s: %v", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}
	for _, row := range mockLeads {
		if err := w.Write(row); err != nil {
			log.Fatalf("Failed to write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("Failed to flush CSV: %v", err)
	}

	log.Printf("Wrote %d mock leads to %s", len(mockLeads), *out)
}
