/*
 *     Copyright 2025 The Pigeonhole Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	logger "github.com/pigeonhole-io/pigeonhole/internal/phlog"
	"github.com/pigeonhole-io/pigeonhole/pkg/pigeonhole"
	"github.com/pigeonhole-io/pigeonhole/pkg/pigeonhole/provider"
)

func runPigeonhole(cmd *cobra.Command, ids []string) error {
	p := provider.NewCatalog(cfg.ProviderSeed())
	store := pigeonhole.New()

	if err := fillStore(store, p, cfg.Count, ids); err != nil {
		return err
	}

	logger.Infof("store holds %d items", store.Len())
	cmd.Print(store.String())
	return nil
}

// fillStore inserts count random items and then the named identifiers.
// Random picks may repeat earlier ones; duplicate inserts are expected
// and skipped. A failed fetch of a named identifier is reported and
// skipped, only a failing random fetch aborts the run.
func fillStore(store pigeonhole.Store, p provider.Provider, count int, ids []string) error {
	for i := 0; i < count; i++ {
		item, err := p.Fetch("")
		if err != nil {
			return errors.Wrap(err, "fetch random item")
		}

		if err := store.Add(*item); err != nil {
			logger.Debugf("skip random item %q: %v", item.ID, err)
			continue
		}

		logger.With("code", item.Code, "time", item.Time).Infof("added %q", item.ID)
	}

	for _, id := range ids {
		item, err := p.Fetch(id)
		if err != nil {
			logger.Warnf("fetch %q: %v", id, err)
			continue
		}

		if err := store.Add(*item); err != nil {
			logger.Warnf("skip %q: %v", id, err)
			continue
		}

		logger.With("code", item.Code, "time", item.Time).Infof("added %q", item.ID)
	}

	return nil
}
