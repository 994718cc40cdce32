package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"tripId",
			"customerName",
			"customerEmail",
			"numTravelers",
			"status",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"tripId": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"customerName": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"customerEmail": bson.M{
				"bsonType":  "string",
				"minLength": 3,
			},

			"numTravelers": bson.M{
				"bsonType":         []string{"double", "int", "long", "decimal"},
				"minimum":          0,
				"exclusiveMinimum": true,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"confirmed",
					"cancelled",
				},
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
