package validators

import "go.mongodb.org/mongo-driver/bson"

var AccountValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"username",
			"password_hash",
			"email",
			"full_name",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"username": bson.M{
				"bsonType":  "string",
				"minLength": 4,
				"pattern":   "^[a-zA-Z0-9_]+$",
			},

			// bcrypt output is always 60 characters
			"password_hash": bson.M{
				"bsonType":  "string",
				"minLength": 60,
				"maxLength": 60,
			},

			"email": bson.M{
				"bsonType": "string",
				"pattern":  `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`,
			},

			"full_name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
