package validators

import "go.mongodb.org/mongo-driver/bson"

var UserValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"googleId",
			"email",
			"name",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"googleId": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"email": bson.M{
				"bsonType": "string",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
