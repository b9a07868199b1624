// Package mongo manages the MongoDB connection for deployments that back the
// notification store with Mongo instead of Postgres: environment-driven
// configuration, startup retry and a health check closure.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	storage := notifications.NewMongoStorage(db)
package mongo
