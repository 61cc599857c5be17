// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/scaffoldrc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🗑️ DeleteFile removes relPath if it exists. A missing file is not an error.
func (p *Project) DeleteFile(ctx context.Context, relPath string) error {
	path := p.resolve(relPath)

	exists, err := p.fs.FileExists(ctx, path)
	if err != nil {
		return errors.Errorf("checking file %s: %w", relPath, err)
	}
	if !exists {
		zerolog.Ctx(ctx).Debug().Str("path", path).Str("op", "delete_file").Msg("file does not exist, skipping")
		return nil
	}

	if err := p.fs.DeleteFile(ctx, path); err != nil {
		return errors.Errorf("deleting file %s: %w", relPath, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Str("op", "delete_file").Msg("deleted file")
	p.report(ctx, log.FileOperation{Path: path, Kind: "delete_file", IsRemoved: true})
	return nil
}

// 🗑️ DeleteDirectory removes relPath and everything below it if it exists
func (p *Project) DeleteDirectory(ctx context.Context, relPath string) error {
	path := p.resolve(relPath)

	exists, err := p.fs.DirectoryExists(ctx, path)
	if err != nil {
		return errors.Errorf("checking directory %s: %w", relPath, err)
	}
	if !exists {
		zerolog.Ctx(ctx).Debug().Str("path", path).Str("op", "delete_directory").Msg("directory does not exist, skipping")
		return nil
	}

	if err := p.fs.DeleteDirectory(ctx, path); err != nil {
		return errors.Errorf("deleting directory %s: %w", relPath, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Str("op", "delete_directory").Msg("deleted directory")
	p.report(ctx, log.FileOperation{Path: path, Kind: "delete_directory", IsRemoved: true})
	return nil
}
