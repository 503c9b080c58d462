package appointments

import (
	"context"
	"time"

	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/models"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) GetClient(ctx context.Context) interface{} {
	return r.Collection.Database().Client()
}

// EnsureIndexes creates the partial unique index that makes double booking
// impossible at the storage layer. Cancelled appointments fall outside the
// partial filter, so a freed slot can be booked again.
func (r *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "docId", Value: 1},
			{Key: "slotDate", Value: 1},
			{Key: "slotTime", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"cancelled": false}),
	}
	_, err := r.Collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error) {
	result, err := r.Collection.InsertOne(ctx, appointmentModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.WrapWithError(err, constvars.StatusConflict, constvars.ErrClientSlotAlreadyBooked, constvars.ErrDevDBDuplicateSlot)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return r.findByFilter(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

func (r *AppointmentMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	return r.findByFilter(ctx, bson.M{"userId": userID}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

func (r *AppointmentMongoRepository) FindByDocID(ctx context.Context, docID string) ([]models.Appointment, error) {
	return r.findByFilter(ctx, bson.M{"docId": docID}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

func (r *AppointmentMongoRepository) FindActiveBySlot(ctx context.Context, docID, slotDate, slotTime string) (*models.Appointment, error) {
	filter := bson.M{
		"docId":     docID,
		"slotDate":  slotDate,
		"slotTime":  slotTime,
		"cancelled": false,
	}
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) MarkCancelled(ctx context.Context, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"cancelled": true}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"scheduledAt":  bson.M{"$gte": from, "$lte": to},
		"cancelled":    false,
		"isCompleted":  false,
		"reminderSent": false,
	}
	return r.findByFilter(ctx, filter, options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}}))
}

// MarkReminderSent filters on reminderSent=false so a concurrent sweep cannot
// flag the same appointment twice.
func (r *AppointmentMongoRepository) MarkReminderSent(ctx context.Context, appointmentID string, sentAt time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID, "reminderSent": false}
	update := bson.M{"$set": bson.M{"reminderSent": true, "reminderSentAt": sentAt}}
	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (r *AppointmentMongoRepository) FindLatest(ctx context.Context, limit int64) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(limit)
	return r.findByFilter(ctx, bson.M{}, opts)
}

func (r *AppointmentMongoRepository) findByFilter(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
