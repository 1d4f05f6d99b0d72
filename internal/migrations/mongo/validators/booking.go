package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"user_id",
			"hotel_name",
			"hotel_id",
			"city",
			"check_in",
			"check_out",
			"room_type",
			"total_price",
			"booking_date",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"user_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"hotel_name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},

			"hotel_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"city": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"check_in": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"check_out": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"room_type": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"total_price": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},

			"booking_date": bson.M{
				"bsonType": "date",
			},
		},
	},
}
