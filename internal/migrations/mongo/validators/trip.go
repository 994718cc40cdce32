package validators

import "go.mongodb.org/mongo-driver/bson"

var TripValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"destination",
			"category",
			"durationDays",
			"price",
			"difficulty",
			"description",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"title": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"destination": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"category": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"durationDays": bson.M{
				"bsonType": "long",
				"minimum":  1,
			},

			"price": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},

			"difficulty": bson.M{
				"bsonType": "string",
				"enum": []string{
					"easy",
					"moderate",
					"hard",
				},
			},

			"description": bson.M{
				"bsonType": "string",
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},

			"updatedAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
