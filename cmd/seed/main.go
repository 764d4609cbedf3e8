package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type caseDoc struct {
	CountryRegion string `bson:"country_region"`
	ProvinceState string `bson:"province_state,omitempty"`
	Latest        int64  `bson:"latest"`
}

// Snapshot of per-country case counts. Countries with province-level
// rows get several documents so aggregation sums are exercised.
var seedData = map[string][]caseDoc{
	"confirmed_cases": {
		{CountryRegion: "US", Latest: 636350},
		{CountryRegion: "Korea, South", Latest: 10591},
		{CountryRegion: "Italy", Latest: 165155},
		{CountryRegion: "Canada", ProvinceState: "Ontario", Latest: 8961},
		{CountryRegion: "Canada", ProvinceState: "Quebec", Latest: 14860},
		{CountryRegion: "China", ProvinceState: "Hubei", Latest: 68128},
		{CountryRegion: "China", ProvinceState: "Guangdong", Latest: 1571},
	},
	"deaths": {
		{CountryRegion: "US", Latest: 28326},
		{CountryRegion: "Korea, South", Latest: 225},
		{CountryRegion: "Italy", Latest: 21645},
		{CountryRegion: "Canada", ProvinceState: "Ontario", Latest: 423},
		{CountryRegion: "Canada", ProvinceState: "Quebec", Latest: 435},
		{CountryRegion: "China", ProvinceState: "Hubei", Latest: 4512},
		{CountryRegion: "China", ProvinceState: "Guangdong", Latest: 8},
	},
	"recovered_cases": {
		{CountryRegion: "US", Latest: 52096},
		{CountryRegion: "Korea, South", Latest: 7616},
		{CountryRegion: "Italy", Latest: 38092},
		{CountryRegion: "Canada", Latest: 8210},
		{CountryRegion: "China", ProvinceState: "Hubei", Latest: 64435},
		{CountryRegion: "China", ProvinceState: "Guangdong", Latest: 1503},
	},
}

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "covid19"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	total := 0
	for collName, docs := range seedData {
		coll := db.Collection(collName)
		if err := coll.Drop(ctx); err != nil {
			log.Fatalf("Failed to drop collection %s: %v", collName, err)
		}
		rows := make([]interface{}, len(docs))
		for i, d := range docs {
			rows[i] = d
		}
		if _, err := coll.InsertMany(ctx, rows); err != nil {
			log.Fatalf("Failed to insert into %s: %v", collName, err)
		}
		total += len(docs)
	}

	fmt.Printf("Seeded %d case documents into database '%s'\n", total, dbName)
}
