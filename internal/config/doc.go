// Package config loads the gallery server configuration.
//
// Configuration comes from three places, later ones winning:
//
//  1. Built-in defaults (see New)
//  2. gallery.json in the working directory
//  3. Environment variables prefixed with GALLERY_, with "." in key
//     names replaced by "_" (GALLERY_SERVER_PORT, GALLERY_SOURCE_BUCKET)
//
// A .env file next to gallery.json is loaded into the environment first.
// Variables already set in the environment are not overridden.
//
// # Configuration File Structure
//
//	{
//	  "env": "development",
//	  "server": { "host": "localhost", "port": 3000 },
//	  "artifacts": { "dir": ".", "root": "artifacts/", "index": "directory" },
//	  "source": { "kind": "s3", "bucket": "my-gallery", "region": "eu-west-1" },
//	  "dev": { "overlay": true, "watch": true },
//	  "metrics": { "enabled": true, "path": "/metrics" },
//	  "log": { "level": "debug", "format": "text" }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
